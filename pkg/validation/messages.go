package validation

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formschema/pkg/schema"
)

// Messages emitted by the engine. Tests and callers match on them, so keep
// them stable.
const (
	MsgPathRequired          = "Path is required"
	MsgNameRequired          = "Name is required"
	MsgLabelRequired         = "Label is required"
	MsgTypeRequired          = "Required"
	MsgInputsMin             = "At least one input is required"
	MsgInputsMax             = "Maximum 20 inputs allowed"
	MsgInvalidInputConfig    = "Invalid input configuration for the selected type"
	MsgInputNamesNotUnique   = "Input names must be unique within a runnable"
	MsgOrderNotSequential    = "Order numbers must be sequential without gaps"
	msgDuplicateInputName    = "Duplicate input name: %s"
	msgDuplicateRunnablePath = "Duplicate runnable path: %s"
	msgInvalidEnum           = "Invalid enum value. Expected %s, received '%s'"
	msgInputsMaxCustom       = "Maximum %d inputs allowed"
)

// DuplicateInputNameMessage is the single-runnable duplicate name message.
func DuplicateInputNameMessage(name string) string {
	return fmt.Sprintf(msgDuplicateInputName, name)
}

// DuplicateRunnablePathMessage is the duplicate runnable path message.
func DuplicateRunnablePathMessage(path string) string {
	return fmt.Sprintf(msgDuplicateRunnablePath, path)
}

func inputsMaxMessage(limit int) string {
	if limit == DefaultMaxInputs {
		return MsgInputsMax
	}
	return fmt.Sprintf(msgInputsMaxCustom, limit)
}

func invalidEnumMessage[T ~string](allowed []T, received T) string {
	quoted := make([]string, len(allowed))
	for i, value := range allowed {
		quoted[i] = "'" + string(value) + "'"
	}
	return fmt.Sprintf(msgInvalidEnum, strings.Join(quoted, " | "), string(received))
}

var (
	runnableTypeEnum = schema.RunnableTypes
	inputTypeEnum    = schema.InputTypes
)
