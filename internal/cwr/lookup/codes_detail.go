package lookup

// The tables below back the detail-record fields (TER..XRF, spec.md §6)
// that schema_detail.go describes. Same shape as codes.go: a closed set of
// variants, an explicit default, and a bound Codec.

// AgreementRoleCode classifies an interested party's role on an IPA
// (Interested Party of Agreement) line.
type AgreementRoleCode string

const (
	RoleAssignor AgreementRoleCode = "AS"
	RoleAcquirer AgreementRoleCode = "AC"
	RoleUnknown  AgreementRoleCode = ""
)

var AgreementRoleCodec = Codec[AgreementRoleCode]{
	Table: newTable(RoleUnknown, RoleAssignor, RoleAcquirer),
	Width: 2,
}

// SpecialAgreementsIndicator flags a publisher's special-agreements status
// on SPU.
type SpecialAgreementsIndicator string

const (
	SpecialAgreementYes     SpecialAgreementsIndicator = "Y"
	SpecialAgreementNo      SpecialAgreementsIndicator = "N"
	SpecialAgreementUnknown SpecialAgreementsIndicator = "U"
)

var SpecialAgreementsCodec = Codec[SpecialAgreementsIndicator]{
	Table: newTable(SpecialAgreementUnknown, SpecialAgreementYes, SpecialAgreementNo),
	Width: 1,
}

// MessageType classifies an MSG record's diagnostic kind within an ACK
// transaction.
type MessageType string

const (
	MessageGeneral   MessageType = "G"
	MessageField     MessageType = "F"
	MessageRecord    MessageType = "R"
	MessageSyntax    MessageType = "S"
	MessageTransaction MessageType = "T"
	MessageUnknown   MessageType = ""
)

var MessageTypeCodec = Codec[MessageType]{
	Table: newTable(MessageUnknown, MessageGeneral, MessageField, MessageRecord, MessageSyntax, MessageTransaction),
	Width: 1,
}

// MessageLevel ranks an MSG record's severity, the CWR-file analogue of
// field.Severity but expressed in the sender's own vocabulary.
type MessageLevel string

const (
	MessageLevelInfo     MessageLevel = "I"
	MessageLevelWarning  MessageLevel = "W"
	MessageLevelError    MessageLevel = "E"
	MessageLevelFatal    MessageLevel = "F"
	MessageLevelUnknown  MessageLevel = ""
)

var MessageLevelCodec = Codec[MessageLevel]{
	Table: newTable(MessageLevelUnknown, MessageLevelInfo, MessageLevelWarning, MessageLevelError, MessageLevelFatal),
	Width: 1,
}

// IntendedPurpose classifies an ORN (work origin) record's production
// context: a commercial work, a library work, or a film work.
type IntendedPurpose string

const (
	PurposeCommercial IntendedPurpose = "COM"
	PurposeLibrary    IntendedPurpose = "LIB"
	PurposeFilm       IntendedPurpose = "FIL"
	PurposeUnknown    IntendedPurpose = ""
)

var IntendedPurposeCodec = Codec[IntendedPurpose]{
	Table: newTable(PurposeUnknown, PurposeCommercial, PurposeLibrary, PurposeFilm),
	Width: 3,
}

// TypeOfRight classifies the right category an ARI (additional related
// info) record comments on.
type TypeOfRight string

const (
	RightPerforming TypeOfRight = "PER"
	RightMechanical TypeOfRight = "MEC"
	RightSynch      TypeOfRight = "SYN"
	RightUnknown    TypeOfRight = ""
)

var TypeOfRightCodec = Codec[TypeOfRight]{
	Table: newTable(RightUnknown, RightPerforming, RightMechanical, RightSynch),
	Width: 3,
}

// ValidityIndicator marks whether an XRF cross-referenced identifier is
// current, superseded, or unknown.
type ValidityIndicator string

const (
	ValidityValid      ValidityIndicator = "Y"
	ValiditySuperseded ValidityIndicator = "N"
	ValidityUnknown    ValidityIndicator = "U"
)

var ValidityIndicatorCodec = Codec[ValidityIndicator]{
	Table: newTable(ValidityUnknown, ValidityValid, ValiditySuperseded),
	Width: 1,
}

// OrganizationCode identifies which body assigned the XRF identifier being
// cross-referenced (the work's own submitter, a CMO, or the ISWC agency).
type OrganizationCode string

const (
	OrgSubmitter OrganizationCode = "SUB"
	OrgISWC      OrganizationCode = "ISW"
	OrgSociety   OrganizationCode = "SOC"
	OrgUnknown   OrganizationCode = ""
)

var OrganizationCodeCodec = Codec[OrganizationCode]{
	Table: newTable(OrgUnknown, OrgSubmitter, OrgISWC, OrgSociety),
	Width: 3,
}

// IdentifierType classifies which external numbering scheme an XRF
// identifier belongs to.
type IdentifierType string

const (
	IdentifierISWC IdentifierType = "ISW"
	IdentifierISRC IdentifierType = "ISR"
	IdentifierEAN  IdentifierType = "EAN"
	IdentifierUnknown IdentifierType = ""
)

var IdentifierTypeCodec = Codec[IdentifierType]{
	Table: newTable(IdentifierUnknown, IdentifierISWC, IdentifierISRC, IdentifierEAN),
	Width: 3,
}

// StandardInstrumentationType names one of CWR's predefined ensemble
// shapes on an INS (instrumentation summary) record.
type StandardInstrumentationType string

const (
	InstrumentationOrchestra StandardInstrumentationType = "ORC"
	InstrumentationBand      StandardInstrumentationType = "BND"
	InstrumentationChoir     StandardInstrumentationType = "CHR"
	InstrumentationUnknown   StandardInstrumentationType = ""
)

var StandardInstrumentationCodec = Codec[StandardInstrumentationType]{
	Table: newTable(InstrumentationUnknown, InstrumentationOrchestra, InstrumentationBand, InstrumentationChoir),
	Width: 3,
}
