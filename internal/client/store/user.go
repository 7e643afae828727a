package store

import "github.com/dmitrijs2005/stellarburgers/internal/client/models"

// UserState is the session slice.
//
// IsLoading belongs to the identity operation that started last (LoadingOp);
// a settling operation of another kind leaves it alone.
type UserState struct {
	User                   *models.User
	IsLoading              bool
	LoadingOp              Kind
	Error                  string
	IsAuthChecked          bool
	IsAuthenticated        bool
	PasswordResetRequested bool
}

var defaultErrors = map[Kind]string{
	KindRegister:       "registration failed",
	KindLogin:          "login failed",
	KindFetchUser:      "failed to fetch user data",
	KindUpdateUser:     "failed to update user data",
	KindLogout:         "logout failed",
	KindForgotPassword: "failed to request password reset",
	KindResetPassword:  "failed to reset password",
}

func isUserKind(k Kind) bool {
	_, ok := defaultErrors[k]
	return ok
}

func errorMessage(a AsyncAction) string {
	if a.Err != nil && a.Err.Error() != "" {
		return a.Err.Error()
	}
	return defaultErrors[a.Kind]
}

func (s UserState) start(k Kind) UserState {
	s.IsLoading = true
	s.LoadingOp = k
	s.Error = ""
	return s
}

func (s UserState) finish(k Kind) UserState {
	if s.LoadingOp == k {
		s.IsLoading = false
		s.LoadingOp = ""
	}
	return s
}

func reduceUser(s UserState, action Action) (UserState, []Effect) {
	switch a := action.(type) {
	case AuthChecked:
		s.IsAuthChecked = true
		return s, nil
	case AsyncAction:
		if !isUserKind(a.Kind) {
			return s, nil
		}
		switch a.Phase {
		case Pending:
			return s.start(a.Kind), nil
		case Rejected:
			return s.rejected(a), nil
		case Fulfilled:
			return s.fulfilled(a)
		}
	}
	return s, nil
}

func (s UserState) rejected(a AsyncAction) UserState {
	s = s.finish(a.Kind)
	s.Error = errorMessage(a)

	switch a.Kind {
	case KindRegister, KindLogin, KindForgotPassword, KindResetPassword:
		s.IsAuthChecked = true
	case KindFetchUser:
		s.IsAuthenticated = false
	}
	return s
}

func (s UserState) fulfilled(a AsyncAction) (UserState, []Effect) {
	s = s.finish(a.Kind)

	switch a.Kind {
	case KindRegister, KindLogin:
		resp := a.Payload.(models.AuthResponse)
		user := resp.User
		s.User = &user
		s.IsAuthChecked = true
		s.IsAuthenticated = true
		return s, []Effect{
			SetCookie{Name: accessTokenName, Value: resp.AccessToken},
			SetStorage{Key: refreshTokenName, Value: resp.RefreshToken},
		}

	case KindFetchUser:
		user := a.Payload.(models.User)
		s.User = &user
		s.IsAuthenticated = true

	case KindUpdateUser:
		user := a.Payload.(models.User)
		s.User = &user

	case KindLogout:
		return UserState{IsAuthChecked: true}, []Effect{
			RemoveStorage{Key: refreshTokenName},
			DeleteCookie{Name: accessTokenName},
		}

	case KindForgotPassword:
		s.IsAuthChecked = true
		s.PasswordResetRequested = true

	case KindResetPassword:
		s.IsAuthChecked = true
		s.PasswordResetRequested = false
	}
	return s, nil
}
