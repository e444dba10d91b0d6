package core

// Mode selects which cleaning pass the mayapy script performs
type Mode string

const (
	// ModeScene cleans a single Maya scene file
	ModeScene Mode = "scene"
	// ModeDirectory recursively cleans every scene file under a directory
	ModeDirectory Mode = "directory"
	// ModeUser cleans the Maya user script directories (userSetup.py and friends)
	ModeUser Mode = "user"
)

// RequiresPath reports whether the mode needs a target path argument
func (m Mode) RequiresPath() bool {
	return m == ModeScene || m == ModeDirectory
}

// Valid reports whether the mode is one of the three known selectors
func (m Mode) Valid() bool {
	switch m {
	case ModeScene, ModeDirectory, ModeUser:
		return true
	}
	return false
}

// InvocationRequest describes a single script invocation.
// Path is empty for ModeUser.
type InvocationRequest struct {
	Mode Mode
	Path string
}

// CleaningResult is the structured output written by the cleaning script.
// Field names match the JSON produced by the script (lower snake case).
type CleaningResult struct {
	Status         string   `json:"status"`
	Message        string   `json:"message"`
	Details        []string `json:"details"`
	CleanedCount   int      `json:"cleaned_count"`
	ProcessedCount int      `json:"processed_count"`
}

// Succeeded reports whether the script considered the run clean
func (r *CleaningResult) Succeeded() bool {
	return r.Status != "error"
}

// SceneExtensions are the recognized Maya scene file extensions (lowercase)
var SceneExtensions = []string{".ma", ".mb"}

// Exit codes
const (
	ExitSuccess       = 0
	ExitGeneral       = 1
	ExitInvalidArgs   = 2
	ExitCleanFailed   = 3
	ExitMayaNotFound  = 4
	ExitScriptMissing = 5
	ExitInterrupted   = 130
)
