package api

// Identifier is a scheme-qualified identifier, e.g. {"crsid", "spqr1"}.
type Identifier struct {
	Scheme string `json:"scheme"`
	Value  string `json:"value"`
}

// AttributeScheme describes one attribute scheme known to the directory,
// e.g. "email" or "jpegPhoto".
type AttributeScheme struct {
	SchemeID    string `json:"schemeid"`
	Precedence  int    `json:"precedence"`
	LDAPName    string `json:"ldapName,omitempty"`
	DisplayName string `json:"displayName"`
	DataType    string `json:"dataType"`
	MultiValued bool   `json:"multiValued"`
	MultiLined  bool   `json:"multiLined"`
	Searchable  bool   `json:"searchable"`
	Regexp      string `json:"regexp,omitempty"`
}

// Attribute is a single attribute of a person or institution. BinaryData
// carries base64-encoded content for binary schemes such as jpegPhoto.
type Attribute struct {
	AttrID        int64  `json:"attrid,omitempty"`
	Scheme        string `json:"scheme"`
	Value         string `json:"value,omitempty"`
	BinaryData    string `json:"binaryData,omitempty"`
	Comment       string `json:"comment,omitempty"`
	InstID        string `json:"instid,omitempty"`
	Visibility    string `json:"visibility,omitempty"`
	EffectiveFrom string `json:"effectiveFrom,omitempty"`
	EffectiveTo   string `json:"effectiveTo,omitempty"`
	OwningGroupID string `json:"owningGroupid,omitempty"`
}

// ContactPhoneNumber is a phone number on an institution contact row.
type ContactPhoneNumber struct {
	PhoneType string `json:"phoneType"`
	Number    string `json:"number"`
	Comment   string `json:"comment,omitempty"`
}

// ContactWebPage is a web page on an institution contact row.
type ContactWebPage struct {
	URL   string `json:"url"`
	Label string `json:"label,omitempty"`
}

// ContactRow is one row of an institution's contact information.
type ContactRow struct {
	Description  string               `json:"description"`
	Bold         bool                 `json:"bold"`
	Italic       bool                 `json:"italic"`
	Addresses    []string             `json:"addresses"`
	Emails       []string             `json:"emails"`
	People       []Person             `json:"people"`
	PhoneNumbers []ContactPhoneNumber `json:"phoneNumbers"`
	WebPages     []ContactWebPage     `json:"webPages"`
}

// Person is a directory person record. The summary fields (identifier,
// visibleName, cancelled) are always present; the rest depend on the fetch
// parameter of the request that produced the record.
type Person struct {
	Identifier     Identifier   `json:"identifier"`
	VisibleName    string       `json:"visibleName"`
	Cancelled      bool         `json:"cancelled"`
	DisplayName    string       `json:"displayName,omitempty"`
	RegisteredName string       `json:"registeredName,omitempty"`
	Surname        string       `json:"surname,omitempty"`
	MISAffiliation string       `json:"misAffiliation,omitempty"`
	IsStaff        bool         `json:"isStaff,omitempty"`
	IsStudent      bool         `json:"isStudent,omitempty"`
	Identifiers    []Identifier `json:"identifiers,omitempty"`
	Attributes     []Attribute  `json:"attributes,omitempty"`
	Institutions   []Institution `json:"institutions,omitempty"`
	Groups         []Group      `json:"groups,omitempty"`
	DirectGroups   []Group      `json:"directGroups,omitempty"`
}

// Group is a directory group record.
type Group struct {
	GroupID          string        `json:"groupid"`
	Name             string        `json:"name"`
	Title            string        `json:"title,omitempty"`
	Description      string        `json:"description,omitempty"`
	Email            string        `json:"email,omitempty"`
	Cancelled        bool          `json:"cancelled"`
	Members          []Person      `json:"members,omitempty"`
	DirectMembers    []Person      `json:"directMembers,omitempty"`
	IncludesGroups   []Group       `json:"includesGroups,omitempty"`
	IncludedByGroups []Group       `json:"includedByGroups,omitempty"`
	ManagedByGroups  []Group       `json:"managedByGroups,omitempty"`
	ReadByGroups     []Group       `json:"readByGroups,omitempty"`
	ReadsGroups      []Group       `json:"readsGroups,omitempty"`
	OwningInsts      []Institution `json:"owningInsts,omitempty"`
	ManagesInsts     []Institution `json:"managesInsts,omitempty"`
}

// Institution is a directory institution record.
type Institution struct {
	InstID          string       `json:"instid"`
	Name            string       `json:"name"`
	Acronym         string       `json:"acronym,omitempty"`
	Cancelled       bool         `json:"cancelled"`
	Attributes      []Attribute  `json:"attributes,omitempty"`
	ContactRows     []ContactRow `json:"contactRows,omitempty"`
	Members         []Person     `json:"members,omitempty"`
	ParentInsts     []Institution `json:"parentInsts,omitempty"`
	ChildInsts      []Institution `json:"childInsts,omitempty"`
	Groups          []Group      `json:"groups,omitempty"`
	MembersGroups   []Group      `json:"membersGroups,omitempty"`
	ManagedByGroups []Group      `json:"managedByGroups,omitempty"`
}

// PersonList is the response body for the person search endpoint.
type PersonList struct {
	Results []Person `json:"results"`
	Count   int      `json:"count"`
	Offset  int      `json:"offset"`
	Limit   int      `json:"limit"`
}

// InstitutionList is the response body for the institution list endpoint.
type InstitutionList struct {
	Results []Institution `json:"results"`
}

// AttributeSchemeList is the response body for the attribute scheme endpoints.
type AttributeSchemeList struct {
	Results []AttributeScheme `json:"results"`
}

// Health is the response body for the health endpoint.
type Health struct {
	Status string `json:"status"`
}
