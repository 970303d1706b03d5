// Package store provides the file-backed persistence layer for
// persona-gateway.
//
// Each store owns exactly one JSON document on disk:
//
//   - UserStore:   users.json          (registered accounts)
//   - FactStore:   persona_facts.json  (persona core memories)
//   - PhraseStore: persona_memory.json (phrase-usage counts)
//
// Every mutation is a whole-document rewrite through an atomic
// temp-file-then-rename, so concurrent readers never see a torn document.
// Each store serializes its own read-modify-write cycle with a mutex; the
// user store additionally performs its uniqueness check and append under a
// single lock acquisition (see UserStore.AppendIfAbsent).
//
// Read policies differ on purpose. The user store is strict: an
// unparseable users file is an error (ErrCorrupt), because treating it as
// empty would reopen registered emails. The fact and phrase stores are
// lenient: missing or corrupt documents fall back to the empty default so
// the prompt pipeline stays available.
package store
