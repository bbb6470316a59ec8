// Package lemma holds build metadata shared by the lemma commands.
package lemma

// Version is the current lemma release.
const Version = "0.1.0"
