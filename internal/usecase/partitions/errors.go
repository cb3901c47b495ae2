package partitions

import (
	"fmt"
	"strings"

	dto "github.com/zhmc-toolkit/zhmc/internal/entity/dto/v1"
	"github.com/zhmc-toolkit/zhmc/pkg/clierrors"
)

var ErrPartitionsUseCase = clierrors.CreateError("PartitionsUseCase")

// InvalidInputError is a user-input error detected locally: an incomplete
// boot-option group or an option value outside its allowed range. It is
// never retried.
type InvalidInputError struct {
	Console clierrors.InternalError
	// Missing lists the option names an otherwise-matched group lacks.
	Missing []string
}

func (e InvalidInputError) Error() string {
	return e.Console.Error()
}

func (e InvalidInputError) Wrap(call, function string, err error) error {
	_ = e.Console.Wrap(call, function, err)

	return e
}

// NotFoundError is raised when a named sub-resource (HBA, NIC) does not
// exist in the partition it was looked up in.
type NotFoundError struct {
	Console clierrors.InternalError
}

func (e NotFoundError) Error() string {
	return e.Console.Error()
}

func (e NotFoundError) Wrap(call, function string, err error) error {
	_ = e.Console.Wrap(call, function, err)

	return e
}

// RemoteError wraps a failure reported by the management client.
type RemoteError struct {
	Console clierrors.InternalError
}

func (e RemoteError) Error() string {
	return e.Console.Error()
}

func (e RemoteError) Wrap(call, function string, err error) error {
	_ = e.Console.Wrap(call, function, err)
	e.Console.Message = err.Error()

	return e
}

func incompleteBootGroupError(group string, missing []dto.OptionName) error {
	names := make([]string, len(missing))
	for i, m := range missing {
		names[i] = string(m)
	}

	e := InvalidInputError{Console: ErrPartitionsUseCase, Missing: names}
	e.Console.Message = fmt.Sprintf("boot from %s specified, but misses the following options: %s",
		group, strings.Join(names, ", "))

	return e
}

func invalidOptionError(detail string) error {
	e := InvalidInputError{Console: ErrPartitionsUseCase}
	e.Console.Message = detail

	return e
}

func adapterNotFoundError(kind, name, partitionName, cpcName string) error {
	e := NotFoundError{Console: ErrPartitionsUseCase}
	e.Console.Message = fmt.Sprintf("could not find %s %s in partition %s in CPC %s",
		kind, name, partitionName, cpcName)

	return e
}

// remoteErr wraps a management-client failure with call context. Errors the
// usecase raised itself pass through untouched.
func (uc *UseCase) remoteErr(call, function string, err error) error {
	switch err.(type) {
	case InvalidInputError, NotFoundError, RemoteError:
		return err
	}

	return RemoteError{Console: ErrPartitionsUseCase}.Wrap(call, function, err)
}
