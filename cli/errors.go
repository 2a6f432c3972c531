package cli

import (
	"errors"

	"github.com/MakeNowJust/heredoc"
)

var (
	ErrConfigNotFound = errors.New(heredoc.Doc(`
	Config file not found. Loading from defaults...

	Run "lineagecheck config init" to initialize a new configuration file
	Run "lineagecheck help environment" for more information.

	Alternatively, make a "lineagecheck.yaml" file in the current directory from the example given
`))

	errHistoryDisabled = errors.New("verification history is disabled, set history.enabled to true")
	errMissingEntityID = errors.New("--source-id and --target-id are required with --graph")
)
