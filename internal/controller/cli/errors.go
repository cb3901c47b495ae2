package cli

import (
	"errors"

	"github.com/zhmc-toolkit/zhmc/internal/usecase/partitions"
	"github.com/zhmc-toolkit/zhmc/internal/usecase/partitions/hmc"
)

// friendlyMessage maps usecase errors to the single-line message printed on
// stderr. Unknown errors pass through unchanged.
func friendlyMessage(err error) string {
	var (
		invalid  partitions.InvalidInputError
		notFound partitions.NotFoundError
		remote   partitions.RemoteError
		hmcErr   *hmc.Error
	)

	switch {
	case errors.As(err, &invalid):
		return invalid.Console.FriendlyMessage()
	case errors.As(err, &notFound):
		return notFound.Console.FriendlyMessage()
	case errors.As(err, &remote):
		return remote.Console.FriendlyMessage()
	case errors.As(err, &hmcErr):
		return hmcErr.Error()
	}

	return err.Error()
}
