package grpc

import (
	"errors"

	"github.com/dmitrijs2005/gophposts/internal/common"
	"github.com/dmitrijs2005/gophposts/internal/server/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service and auth errors onto gRPC status codes. Errors that
// match no known class become codes.Internal with a generic message.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case common.IsAuthenticationError(err):
		return status.Error(codes.Unauthenticated, authFailureMessage(err))
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func authFailureMessage(err error) string {
	var verr *auth.VerifyError
	if errors.As(err, &verr) {
		return "unauthenticated: " + verr.Code()
	}
	switch {
	case errors.Is(err, common.ErrMissingToken):
		return "unauthenticated: missing_token"
	case errors.Is(err, common.ErrPrincipalNotFound):
		return "unauthenticated: unknown_principal"
	default:
		return "unauthenticated"
	}
}
