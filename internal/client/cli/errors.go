package cli

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// report prints a user-facing description of err and returns it unchanged.
// An Unauthenticated reply drops the stored token, since it will not start
// working again.
func (a *App) report(err error) error {
	st, _ := status.FromError(err)

	switch st.Code() {
	case codes.Unauthenticated:
		if a.isLoggedIn() {
			a.token = ""
			a.userName = ""
			fmt.Fprintln(a.out, "Session is no longer valid, please login again:", st.Message())
		} else {
			fmt.Fprintln(a.out, "Not logged in:", st.Message())
		}
	case codes.PermissionDenied:
		fmt.Fprintln(a.out, "You can only change your own posts")
	case codes.NotFound:
		fmt.Fprintln(a.out, "No such post")
	case codes.InvalidArgument, codes.AlreadyExists:
		fmt.Fprintln(a.out, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		fmt.Fprintln(a.out, "Server unavailable")
	default:
		fmt.Fprintln(a.out, "Error:", st.Message())
	}
	return err
}
