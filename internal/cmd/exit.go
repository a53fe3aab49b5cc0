package cmd

// Exit codes returned by the rustlay binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitArgumentError indicates a missing or invalid argument or flag.
	ExitArgumentError = 2

	// ExitTemplateLoadError indicates a template or config file could not be loaded.
	ExitTemplateLoadError = 3

	// ExitRenderError indicates a template failed to render.
	ExitRenderError = 4

	// ExitIOError indicates a directory or file could not be written.
	ExitIOError = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitArgumentError:
		return "Argument Error"
	case ExitTemplateLoadError:
		return "Template Load Error"
	case ExitRenderError:
		return "Render Error"
	case ExitIOError:
		return "I/O Error"
	default:
		return "Unknown"
	}
}
