package evaluator

import (
	"fmt"
	"os"
	"path/filepath"
)

// stdoutWriter, exitFunc, and importResolver are indirection seams so
// callers can redirect `puts` output, the CLI can wire the configured
// import search path into `import(...)` resolution, and tests can
// observe `exit(n)` without actually terminating the test binary.
var (
	stdoutWriter = func(s string) { fmt.Println(s) }
	exitFunc     = os.Exit
	// importResolver mirrors config.Config.ResolveImport's default
	// behavior (relative to the importing file, nothing else to fall
	// back on) until the CLI wires in the configured search path.
	importResolver = func(requestorDir, name string) string {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(requestorDir, name)
	}
)

// SetOutput redirects the output of the `puts` builtin.
func SetOutput(w func(string)) { stdoutWriter = w }

// SetExit overrides the behavior of the `exit` builtin, primarily for
// tests; the real CLI leaves this as os.Exit.
func SetExit(f func(int)) { exitFunc = f }

// SetImportResolver overrides how `import(...)` turns a requestor
// directory and a literal import name into a path to read, so a
// configured search path (config.Config.ImportPaths) is consulted for
// bare names that aren't resolvable relative to the importing file.
func SetImportResolver(f func(requestorDir, name string) string) { importResolver = f }
