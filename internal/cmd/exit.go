// Package cmd provides command implementations for the trigger-release CLI.
package cmd

// Exit codes. Every failure is fatal; the code tells CI operators which
// stage broke without reading the log.
const (
	// ExitSuccess indicates the command completed successfully,
	// including the already-published no-op.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitConfigError indicates the manifest or config file is missing
	// or lacks a required field.
	ExitConfigError = 2

	// ExitRegistryError indicates the package registry was unreachable
	// or returned an undecodable response.
	ExitRegistryError = 3

	// ExitInvariantError indicates the registry returned a mismatched
	// version payload.
	ExitInvariantError = 4

	// ExitCommandError indicates an external command (git, gh) exited
	// non-zero.
	ExitCommandError = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitConfigError:
		return "Config Error"
	case ExitRegistryError:
		return "Registry Error"
	case ExitInvariantError:
		return "Invariant Violation"
	case ExitCommandError:
		return "Command Error"
	default:
		return "Unknown"
	}
}
