// Package submodule initializes the nested git submodules of the vendored
// third_party tree.
//
// Each target directory gets exactly one `git submodule update --init .`
// invocation, run with that directory as the working directory. Targets are
// processed strictly in order and git's exit status is never used to decide
// what happens next: a failed update is logged and the next target runs
// anyway. Only a failure to start git at all stops the sequence.
package submodule
