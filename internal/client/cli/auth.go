package cli

import (
	"context"

	"github.com/dmitrijs2005/stellarburgers/internal/client/models"
	"github.com/dmitrijs2005/stellarburgers/internal/client/store"
)

// authResult reports the outcome of a user operation from the store's view.
func (a *App) authResult(err error, ok string) error {
	if err != nil {
		msg := store.SelectUserError(a.store.State())
		if msg == "" {
			msg = err.Error()
		}
		a.println("Error:", msg)
		return err
	}
	a.println(ok)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	_, err = a.store.Register(ctx, models.RegisterData{Name: name, Email: email, Password: password}).Wait(ctx)
	return a.authResult(err, "Registered as "+name)
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	resp, err := a.store.Login(ctx, models.LoginData{Email: email, Password: password}).Wait(ctx)
	return a.authResult(err, "Logged in as "+resp.User.Name)
}

func (a *App) Whoami(ctx context.Context) error {
	u := store.SelectUser(a.store.State())
	if u == nil {
		a.println("Not logged in")
		return nil
	}
	a.printf("%s <%s>\n", u.Name, u.Email)
	return nil
}

func (a *App) Update(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Please login first")
		return nil
	}

	var upd models.UserUpdate
	var err error
	if upd.Name, err = GetOptionalText(a.reader, "New name", a.out); err != nil {
		return err
	}
	if upd.Email, err = GetOptionalText(a.reader, "New email", a.out); err != nil {
		return err
	}
	if upd.Name == nil && upd.Email == nil {
		a.println("Nothing to update")
		return nil
	}

	_, err = a.store.UpdateUser(ctx, upd).Wait(ctx)
	return a.authResult(err, "Profile updated")
}

func (a *App) Logout(ctx context.Context) error {
	_, err := a.store.Logout(ctx).Wait(ctx)
	return a.authResult(err, "Logged out")
}

func (a *App) Forgot(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	_, err = a.store.RequestPasswordReset(ctx, email).Wait(ctx)
	return a.authResult(err, "Check your mail for the reset code, then run 'reset'")
}

func (a *App) ResetPassword(ctx context.Context) error {
	if !a.store.State().User.PasswordResetRequested {
		a.println("Run 'forgot' first")
		return nil
	}
	token, err := GetSimpleText(a.reader, "Enter code from email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	_, err = a.store.ResetPassword(ctx, models.ResetPasswordData{Password: password, Token: token}).Wait(ctx)
	return a.authResult(err, "Password changed, you can login now")
}
