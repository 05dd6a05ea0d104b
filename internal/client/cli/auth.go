package cli

import (
	"context"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/forms"
)

// getSimpleText, getTextWithDefault and getPassword are indirections used
// to facilitate testing; they point to the interactive input helpers.
var getSimpleText = GetSimpleText
var getTextWithDefault = GetTextWithDefault
var getPassword = GetPassword

// Register collects email and password (typed twice), validates locally
// and creates the account. A password mismatch is caught client-side; no
// request leaves the machine in that case.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	verify, err := getPassword("Verify password", a.out)
	if err != nil {
		return err
	}

	form := forms.RegisterForm{Email: email, Password: password, VerifyPassword: verify}
	if errs := form.Validate(); len(errs) > 0 {
		a.renderFieldErrors(errs)
		return nil
	}

	if err := a.accounts.Register(ctx, email, password); err != nil {
		a.log.Error(ctx, "register", "error", err)
		a.println("An error occurred")
		return err
	}

	a.println("Account created! You can now sign in.")
	return nil
}

// SignIn authenticates, persists the session and lands on the profile
// view, mirroring the post-sign-in redirect of the web app.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	form := forms.SignInForm{Email: email, Password: password}
	if errs := form.Validate(); len(errs) > 0 {
		a.renderFieldErrors(errs)
		return nil
	}

	account, err := a.accounts.SignIn(ctx, email, password)
	if err != nil {
		a.log.Error(ctx, "sign in", "error", err)
		a.println("An error occurred")
		return err
	}

	a.email = account.Email
	a.printf("Signed in as %s\n", account.Email)
	return a.Profile(ctx)
}

// SignOut invalidates the token server-side and clears the local session
// either way.
func (a *App) SignOut(ctx context.Context) error {
	if !a.requireSession(ctx) {
		return nil
	}

	if err := a.accounts.SignOut(ctx); err != nil {
		a.log.Error(ctx, "sign out", "error", err)
	}
	a.email = ""
	a.println("Signed out.")
	return nil
}

func (a *App) renderFieldErrors(errs []forms.FieldError) {
	for _, e := range errs {
		a.println(e.Message)
	}
}
