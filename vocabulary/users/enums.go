package users

import "github.com/c360studio/enumkit/enum"

// UserType classifies a user account.
type UserType string

const (
	// UserRegular is a normal human account.
	UserRegular UserType = "regular"

	// UserSystem is an internal account owned by the platform itself.
	// System accounts perform automated maintenance actions.
	UserSystem UserType = "system"

	// UserBot is an automated account operated on behalf of a human owner.
	UserBot UserType = "bot"
)

// Types is the declared user type vocabulary.
var Types = enum.Declare("user.type",
	enum.V("REGULAR", UserRegular),
	enum.V("SYSTEM", UserSystem),
	enum.V("BOT", UserBot),
)

// IsValid reports whether t is a declared user type.
func (t UserType) IsValid() bool {
	return Types.IsValue(t)
}

func init() {
	enum.MustRegister(Types)
}
