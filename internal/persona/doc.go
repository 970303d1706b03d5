// Package persona defines the static persona profile: immutable core
// traits plus per-mode voice settings (casual and professional), including
// the phrase lists that feed the style-memory loop. DetectPhrases is the
// bridge from a generated answer back into the phrase-usage store.
package persona
