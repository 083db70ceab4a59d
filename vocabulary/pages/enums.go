package pages

import "github.com/c360studio/enumkit/enum"

// ConnectionType classifies a directed relationship between two pages.
type ConnectionType string

const (
	// ConnectionIncludeMessy is a text-level include, where the source is
	// pasted into the including page before parsing.
	ConnectionIncludeMessy ConnectionType = "include-messy"

	// ConnectionIncludeElements is a structural include, where the parsed
	// elements of the target are embedded in the including page.
	ConnectionIncludeElements ConnectionType = "include-elements"

	// ConnectionComponent marks usage of the target as a component.
	ConnectionComponent ConnectionType = "component"

	// ConnectionLink is an ordinary wiki link to the target page.
	ConnectionLink ConnectionType = "link"

	// ConnectionRedirect marks the source as redirecting to the target.
	ConnectionRedirect ConnectionType = "redirect"
)

// ConnectionTypes is the declared page connection vocabulary.
var ConnectionTypes = enum.Declare("page.connection",
	enum.V("INCLUDE_MESSY", ConnectionIncludeMessy),
	enum.V("INCLUDE_ELEMENTS", ConnectionIncludeElements),
	enum.V("COMPONENT", ConnectionComponent),
	enum.V("LINK", ConnectionLink),
	enum.V("REDIRECT", ConnectionRedirect),
)

// IsValid reports whether t is a declared connection type.
func (t ConnectionType) IsValid() bool {
	return ConnectionTypes.IsValue(t)
}

// RevisionType classifies an entry in a page's revision history.
type RevisionType string

const (
	// RevisionCreate is the first revision of a page.
	RevisionCreate RevisionType = "create"

	// RevisionRegular is an ordinary edit to an existing page.
	RevisionRegular RevisionType = "regular"

	// RevisionMove records a change of the page's slug.
	RevisionMove RevisionType = "move"

	// RevisionDelete records the page being deleted.
	RevisionDelete RevisionType = "delete"

	// RevisionUndelete records the page being restored after deletion.
	RevisionUndelete RevisionType = "undelete"
)

// RevisionTypes is the declared page revision vocabulary.
var RevisionTypes = enum.Declare("page.revision",
	enum.V("CREATE", RevisionCreate),
	enum.V("REGULAR", RevisionRegular),
	enum.V("MOVE", RevisionMove),
	enum.V("DELETE", RevisionDelete),
	enum.V("UNDELETE", RevisionUndelete),
)

// IsValid reports whether t is a declared revision type.
func (t RevisionType) IsValid() bool {
	return RevisionTypes.IsValue(t)
}

func init() {
	enum.MustRegister(ConnectionTypes)
	enum.MustRegister(RevisionTypes)
}
