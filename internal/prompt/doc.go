// Package prompt assembles system prompts for the model from store
// snapshots. Assembly is pure: the same mode, fact document, and phrase
// snapshot always produce the same prompt, and empty snapshots are valid
// inputs. The facts block is bounded both by entry count and by total size
// so a full fact store cannot blow up the prompt.
package prompt
