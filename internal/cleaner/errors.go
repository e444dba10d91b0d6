package cleaner

import "fmt"

// FileNotFoundError indicates the scene file does not exist after resolution
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s. Check that the file exists and that you have permission to access it.", e.Path)
}

// DirectoryNotFoundError indicates the target directory does not exist or is not a directory
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("directory not found: %s", e.Path)
}

// WrongFileTypeError indicates the target is not a Maya scene file
type WrongFileTypeError struct {
	Path string
}

func (e *WrongFileTypeError) Error() string {
	return fmt.Sprintf("not a Maya scene file (.ma or .mb): %s", e.Path)
}
