package chat

import (
	"os/exec"
	"runtime"
)

// ExecSpeaker shells out to a system text-to-speech command.
type ExecSpeaker struct {
	Command string
}

// NewExecSpeaker picks the platform TTS command: say on macOS, espeak
// elsewhere.
func NewExecSpeaker() *ExecSpeaker {
	cmd := "espeak"
	if runtime.GOOS == "darwin" {
		cmd = "say"
	}
	return &ExecSpeaker{Command: cmd}
}

func (s *ExecSpeaker) Say(text string) error {
	return exec.Command(s.Command, text).Run()
}
