package helpers

import "context"

// MockCommandRunner is a mock implementation of CommandRunner for testing
type MockCommandRunner struct {
	CommandExistsFunc func(name string) bool
	RunCommandFunc    func(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
	GetExitCodeFunc   func(err error) int

	// Calls records every RunCommand invocation (command name followed by args)
	Calls [][]string
}

// CommandExists implements CommandRunner.CommandExists
func (m *MockCommandRunner) CommandExists(name string) bool {
	if m.CommandExistsFunc != nil {
		return m.CommandExistsFunc(name)
	}
	return false
}

// RunCommand implements CommandRunner.RunCommand
func (m *MockCommandRunner) RunCommand(ctx context.Context, name string, args ...string) (string, string, error) {
	m.Calls = append(m.Calls, append([]string{name}, args...))
	if m.RunCommandFunc != nil {
		return m.RunCommandFunc(ctx, name, args...)
	}
	return "", "", nil
}

// GetExitCode implements CommandRunner.GetExitCode
func (m *MockCommandRunner) GetExitCode(err error) int {
	if m.GetExitCodeFunc != nil {
		return m.GetExitCodeFunc(err)
	}
	if err == nil {
		return 0
	}
	return 1
}
