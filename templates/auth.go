package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func Login(action string, err error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := formError(w, err); err != nil {
			return err
		}
		_, werr := fmt.Fprintf(w, `<form class="auth-form" method="post" action="%s">
<label>Username or email <input type="text" name="user" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Log in</button>
</form>
`, templ.EscapeString(action))
		return werr
	})
}

func SignUp(action string, err error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := formError(w, err); err != nil {
			return err
		}
		_, werr := fmt.Fprintf(w, `<form class="auth-form" method="post" action="%s">
<label>Username <input type="text" name="username" required></label>
<label>Email <input type="email" name="email" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Sign up</button>
</form>
`, templ.EscapeString(action))
		return werr
	})
}

func formError(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	_, werr := fmt.Fprintf(w, `<p class="form-error">%s</p>`+"\n", templ.EscapeString(err.Error()))
	return werr
}
