package openbump

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Status is the outcome of a successful bump.
type Status int

// Bump outcomes
const (
	StatusBumped Status = iota
	StatusAlreadyBumped
)

func (s Status) String() string {
	switch s {
	case StatusBumped:
		return "bumped"
	case StatusAlreadyBumped:
		return "already bumped"
	default:
		return "unknown"
	}
}

// Patcher bumps boot images.
type Patcher struct {
	// Log receives padding warnings and size decisions. Nil uses the
	// logrus standard logger.
	Log logrus.FieldLogger
}

var defaultPatcher = &Patcher{}

// NewPatcher creates a Patcher that logs to log.
func NewPatcher(log logrus.FieldLogger) *Patcher {
	return &Patcher{Log: log}
}

func (p *Patcher) log() logrus.FieldLogger {
	if p.Log == nil {
		return logrus.StandardLogger()
	}

	return p.Log
}

// appendMagic writes the bump signature to the end of the file at path.
func appendMagic(path string) (err error) {
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return eMsg(err, "opening output for appending")
	}
	defer func() {
		cErr := out.Close()
		if err == nil && cErr != nil {
			err = eMsg(cErr, "closing output")
		}
	}()

	_, err = out.Write(Magic())
	if err != nil {
		return eMsg(err, "appending signature")
	}

	return
}

// Bump copies the image at inputPath to outputPath, normalizes its padding
// and appends the bump signature. Images that already carry the signature are
// copied unchanged. inputPath and outputPath may be the same file.
func (p *Patcher) Bump(inputPath, outputPath string) (Status, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return 0, eMsg(err, "reading image")
	}

	err = os.WriteFile(outputPath, data, 0644)
	if err != nil {
		return 0, eMsg(err, "writing output")
	}

	log := p.log().WithField("image", outputPath)
	if IsBumped(data) {
		log.Debug("Signature found in image trailer")
		return StatusAlreadyBumped, nil
	}

	err = p.PadImage(outputPath)
	if err != nil {
		return 0, err
	}

	err = appendMagic(outputPath)
	if err != nil {
		return 0, err
	}

	log.Debug("Appended signature")
	return StatusBumped, nil
}

// Bump bumps the image at inputPath into outputPath using the default Patcher.
func Bump(inputPath, outputPath string) (Status, error) {
	return defaultPatcher.Bump(inputPath, outputPath)
}
