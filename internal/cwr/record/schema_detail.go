package record

import (
	"github.com/leengari/cwrkit/internal/cwr/cwrversion"
	"github.com/leengari/cwrkit/internal/cwr/lookup"
)

// Detail records elaborate on the preceding transaction header (spec.md
// §6, GLOSSARY "Detail record"). Every one of the 31 tags below shares the
// same 19-byte common prefix as the transaction headers in
// schema_transaction.go; their trailing fields are laid out with a cursor
// so version-gated 2.1/2.2 extensions can be appended without
// hand-recomputing every following column, per builders.go's cursor type.

// TERDescriptor — territory-of-agreement line following AGR.
var TERDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("TER",
		c.code("inclusion_exclusion_indicator", "Inclusion/Exclusion Indicator", Mandatory, lookup.InclusionExclusionCodec),
		c.code("tis_numeric_code", "TIS Numeric Code", Mandatory, lookup.TISCodec{}),
	)
}()

// IPADescriptor — interested party of agreement.
var IPADescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("IPA",
		c.code("agreement_role_code", "Agreement Role Code", Mandatory, lookup.AgreementRoleCodec),
		c.alpha("ipi_name_number", "IPI Name Number", 11, Optional),
		c.alpha("ipi_base_number", "IPI Base Number", 13, Optional),
		c.alpha("interested_party_num", "Interested Party Number", 9, Mandatory),
		c.alpha("interested_party_last_name", "Interested Party Last Name", 45, Mandatory),
		c.alpha("interested_party_first_name", "Interested Party First Name", 30, Optional),
		c.share("pr_affiliation_share", "PR Affiliation Share", Optional),
		c.share("mr_affiliation_share", "MR Affiliation Share", Optional),
		c.share("sr_affiliation_share", "SR Affiliation Share", Optional),
	)
}()

// NPADescriptor — non-roman alphabet agreement party name.
var NPADescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("NPA",
		c.alpha("interested_party_num", "Interested Party Number", 9, Mandatory),
		c.alpha("interested_party_name", "Interested Party Name", 160, Mandatory),
		c.alpha("interested_party_first_name", "Interested Party First Name", 160, Optional),
		c.code("language_code", "Language Code", Optional, lookup.LanguageCodeCodec),
	)
}()

// SPUDescriptor — publisher controlled by submitter.
var SPUDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	d := newDetailDescriptor("SPU",
		c.num("publisher_sequence_num", "Publisher Sequence Number", 2, Mandatory),
		c.alpha("interested_party_num", "Interested Party Number", 9, Optional),
		c.alpha("publisher_name", "Publisher Name", 45, Mandatory),
		c.flag("publisher_unknown_indicator", "Publisher Unknown Indicator", Optional),
		c.code("publisher_type", "Publisher Type", Mandatory, lookup.PublisherTypeCodec),
		c.alpha("tax_id_num", "Tax ID Number", 9, Optional),
		c.alpha("publisher_ipi_name_num", "Publisher IPI Name Number", 11, Optional),
		c.alpha("submitter_agreement_number", "Submitter Agreement Number", 14, Optional),
		c.code("pr_affiliation_society", "PR Affiliation Society", Optional, lookup.SocietyCodec{}),
		c.share("pr_ownership_share", "PR Ownership Share", Optional),
		c.code("mr_affiliation_society", "MR Affiliation Society", Optional, lookup.SocietyCodec{}),
		c.share("mr_ownership_share", "MR Ownership Share", Optional),
		c.code("sr_affiliation_society", "SR Affiliation Society", Optional, lookup.SocietyCodec{}),
		c.share("sr_ownership_share", "SR Ownership Share", Optional),
		c.code("special_agreements_indicator", "Special Agreements Indicator", Optional, lookup.SpecialAgreementsCodec),
		c.flag("first_recording_refusal_ind", "First Recording Refusal Indicator", Optional),
	)
	d.Fields = append(d.Fields, versioned(c.flag("usa_license_ind", "USA License Indicator", Optional), cwrversion.V21))
	return d
}()

// NPNDescriptor — publisher name in non-roman alphabet.
var NPNDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("NPN",
		c.num("publisher_sequence_num", "Publisher Sequence Number", 2, Mandatory),
		c.alpha("interested_party_num", "Interested Party Number", 9, Mandatory),
		c.alpha("publisher_name", "Publisher Name", 480, Mandatory),
		c.code("language_code", "Language Code", Optional, lookup.LanguageCodeCodec),
	)
}()

// territoryOfControlFields is shared by SPT, OPT, SWT, and OWT, which all
// carry the same territory-of-control shape against a different
// controlling interested party.
func territoryOfControlFields() []FieldDescriptor {
	c := newCursor(prefixEnd)
	return []FieldDescriptor{
		c.alpha("interested_party_num", "Interested Party Number", 9, Mandatory),
		c.share("pr_collection_share", "PR Collection Share", Optional),
		c.share("mr_collection_share", "MR Collection Share", Optional),
		c.share("sr_collection_share", "SR Collection Share", Optional),
		c.code("inclusion_exclusion_indicator", "Inclusion/Exclusion Indicator", Mandatory, lookup.InclusionExclusionCodec),
		c.code("tis_numeric_code", "TIS Numeric Code", Mandatory, lookup.TISCodec{}),
		c.boolean("shares_change", "Shares Change", Optional),
		c.num("sequence_num", "Sequence Number", 3, Mandatory),
	}
}

// SPTDescriptor — publisher territory of control.
var SPTDescriptor = newDetailDescriptor("SPT", territoryOfControlFields()...)

// OPTDescriptor — publisher non-controlled collection, same shape as SPT.
var OPTDescriptor = newDetailDescriptor("OPT", territoryOfControlFields()...)

// writerFields is shared by SWR (writer controlled by submitter) and OWR
// (other writer, not controlled by submitter).
func writerFields() []FieldDescriptor {
	c := newCursor(prefixEnd)
	return []FieldDescriptor{
		c.alpha("interested_party_num", "Interested Party Number", 9, Optional),
		c.alpha("writer_last_name", "Writer Last Name", 45, Mandatory),
		c.alpha("writer_first_name", "Writer First Name", 30, Optional),
		c.flag("writer_unknown_indicator", "Writer Unknown Indicator", Optional),
		c.code("writer_designation_code", "Writer Designation Code", Optional, lookup.WriterDesignationCodec),
		c.alpha("tax_id_num", "Tax ID Number", 9, Optional),
		c.alpha("writer_ipi_name_num", "Writer IPI Name Number", 11, Optional),
		c.code("pr_affiliation_society", "PR Affiliation Society", Optional, lookup.SocietyCodec{}),
		c.share("pr_ownership_share", "PR Ownership Share", Optional),
		c.code("mr_affiliation_society", "MR Affiliation Society", Optional, lookup.SocietyCodec{}),
		c.share("mr_ownership_share", "MR Ownership Share", Optional),
		c.code("sr_affiliation_society", "SR Affiliation Society", Optional, lookup.SocietyCodec{}),
		c.share("sr_ownership_share", "SR Ownership Share", Optional),
		c.boolean("reversionary_indicator", "Reversionary Indicator", Optional),
		c.flag("first_recording_refusal_ind", "First Recording Refusal Indicator", Optional),
		c.boolean("work_for_hire_indicator", "Work For Hire Indicator", Optional),
		c.alpha("writer_ipi_base_number", "Writer IPI Base Number", 13, Optional),
		c.alpha("personal_number", "Personal Number", 12, Optional),
	}
}

// SWRDescriptor — writer controlled by submitter.
var SWRDescriptor = newDetailDescriptor("SWR", writerFields()...)

// OWRDescriptor — other writer, not controlled by the submitter.
var OWRDescriptor = newDetailDescriptor("OWR", writerFields()...)

// NWNDescriptor — writer name in non-roman alphabet.
var NWNDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("NWN",
		c.alpha("interested_party_num", "Interested Party Number", 9, Optional),
		c.alpha("writer_last_name", "Writer Last Name", 160, Mandatory),
		c.alpha("writer_first_name", "Writer First Name", 160, Optional),
		c.code("language_code", "Language Code", Optional, lookup.LanguageCodeCodec),
	)
}()

// SWTDescriptor — writer territory of control.
var SWTDescriptor = newDetailDescriptor("SWT", territoryOfControlFields()...)

// OWTDescriptor — other writer territory of control.
var OWTDescriptor = newDetailDescriptor("OWT", territoryOfControlFields()...)

// PWRDescriptor — publisher for writer, linking a writer line back to its
// administering publisher.
var PWRDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("PWR",
		c.alpha("publisher_ip_num", "Publisher IP Number", 9, Mandatory),
		c.alpha("publisher_name", "Publisher Name", 45, Optional),
		c.alpha("submitter_agreement_number", "Submitter Agreement Number", 14, Optional),
		c.alpha("society_assigned_agreement_number", "Society-Assigned Agreement Number", 14, Optional),
		c.alpha("writer_ip_num", "Writer IP Number", 9, Optional),
	)
}()

// ALTDescriptor — alternate title.
var ALTDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("ALT",
		c.alpha("alternate_title", "Alternate Title", 60, Mandatory),
		c.code("title_type", "Title Type", Mandatory, lookup.TitleTypeCodec),
		c.code("language_code", "Language Code", Optional, lookup.LanguageCodeCodec),
	)
}()

// NATDescriptor — non-roman alphabet title.
var NATDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("NAT",
		c.alpha("title", "Title", 640, Mandatory),
		c.code("title_type", "Title Type", Mandatory, lookup.TitleTypeCodec),
		c.code("language_code", "Language Code", Optional, lookup.LanguageCodeCodec),
	)
}()

// entireWorkFields is shared by EWT (entire work title for an excerpt) and
// VER (original work title for a version), which cite up to two writers
// of the work being excerpted or modified.
func entireWorkFields(titleField, titleLabel string) []FieldDescriptor {
	c := newCursor(prefixEnd)
	return []FieldDescriptor{
		c.alpha(titleField, titleLabel, 60, Mandatory),
		c.alpha("iswc", "ISWC", 11, Optional),
		c.code("language_code", "Language Code", Optional, lookup.LanguageCodeCodec),
		c.alpha("writer_one_last_name", "Writer 1 Last Name", 45, Optional),
		c.alpha("writer_one_first_name", "Writer 1 First Name", 30, Optional),
		c.alpha("writer_one_ipi_name_num", "Writer 1 IPI Name Number", 11, Optional),
		c.alpha("writer_two_last_name", "Writer 2 Last Name", 45, Optional),
		c.alpha("writer_two_first_name", "Writer 2 First Name", 30, Optional),
		c.alpha("writer_two_ipi_name_num", "Writer 2 IPI Name Number", 11, Optional),
		c.alpha("source", "Source", 60, Optional),
		c.alpha("writer_one_ipi_base_number", "Writer 1 IPI Base Number", 13, Optional),
		c.alpha("writer_two_ipi_base_number", "Writer 2 IPI Base Number", 13, Optional),
	}
}

// EWTDescriptor — entire work title for an excerpt.
var EWTDescriptor = newDetailDescriptor("EWT", entireWorkFields("entire_work_title", "Entire Work Title")...)

// VERDescriptor — original work title for a version.
var VERDescriptor = newDetailDescriptor("VER", entireWorkFields("original_work_title", "Original Work Title")...)

// NETDescriptor — non-roman alphabet entire-work title.
var NETDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("NET",
		c.alpha("title", "Title", 640, Mandatory),
		c.code("language_code", "Language Code", Optional, lookup.LanguageCodeCodec),
	)
}()

// NVTDescriptor — non-roman alphabet original title for a version.
var NVTDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("NVT",
		c.alpha("title", "Title", 640, Mandatory),
		c.code("language_code", "Language Code", Optional, lookup.LanguageCodeCodec),
	)
}()

// PERDescriptor — performing artist.
var PERDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("PER",
		c.alpha("performing_artist_last_name", "Performing Artist Last Name", 45, Mandatory),
		c.alpha("performing_artist_first_name", "Performing Artist First Name", 30, Optional),
		c.alpha("performing_artist_ipi_name_num", "Performing Artist IPI Name Number", 11, Optional),
		c.alpha("performing_artist_ipi_base_number", "Performing Artist IPI Base Number", 13, Optional),
	)
}()

// NPRDescriptor — performance data / performing artist in non-roman
// alphabet, plus the performance's spoken language and dialect.
var NPRDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("NPR",
		c.alpha("performing_artist_name", "Performing Artist Name", 160, Optional),
		c.alpha("performing_artist_first_name", "Performing Artist First Name", 160, Optional),
		c.alpha("performing_artist_ipi_name_num", "Performing Artist IPI Name Number", 11, Optional),
		c.alpha("performance_language", "Performance Language", 2, Optional),
		c.alpha("performance_dialect", "Performance Dialect", 3, Optional),
	)
}()

// RECDescriptor — recording detail.
var RECDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("REC",
		c.date("first_release_date", "First Release Date", Optional),
		c.time("first_release_duration", "First Release Duration", Optional),
		c.alpha("first_album_title", "First Album Title", 60, Optional),
		c.alpha("first_album_label", "First Album Label", 60, Optional),
		c.alpha("first_release_catalog_num", "First Release Catalog Number", 18, Optional),
		c.alpha("ean", "EAN", 13, Optional),
		c.alpha("isrc", "ISRC", 12, Optional),
		c.code("recording_format", "Recording Format", Optional, lookup.RecordingFormatCodec),
		c.code("recording_technique", "Recording Technique", Optional, lookup.RecordingTechniqueCodec),
		c.alpha("media_type", "Media Type", 3, Optional),
	)
}()

// ORNDescriptor — work origin.
var ORNDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("ORN",
		c.code("intended_purpose", "Intended Purpose", Mandatory, lookup.IntendedPurposeCodec),
		c.alpha("production_title", "Production Title", 60, Optional),
		c.alpha("cd_identifier", "CD Identifier", 15, Optional),
		c.num("cut_number", "Cut Number", 4, Optional),
		c.alpha("library", "Library", 60, Optional),
		c.alpha("bltvr", "BLTVR", 1, Optional),
		c.alpha("visan", "V-ISAN", 25, Optional),
		c.alpha("production_num", "Production Number", 12, Optional),
		c.alpha("episode_title", "Episode Title", 60, Optional),
		c.alpha("episode_num", "Episode Number", 20, Optional),
		c.num("year_of_production", "Year Of Production", 4, Optional),
		c.alpha("audio_visual_key", "Audio-Visual Key", 14, Optional),
	)
}()

// INSDescriptor — instrumentation summary.
var INSDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("INS",
		c.num("number_of_voices", "Number Of Voices", 3, Optional),
		c.code("standard_instrumentation_type", "Standard Instrumentation Type", Optional, lookup.StandardInstrumentationCodec),
		c.alpha("instrumentation_description", "Instrumentation Description", 50, Optional),
	)
}()

// INDDescriptor — instrumentation detail, one instrument line under an INS.
var INDDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("IND",
		c.alpha("instrument_code", "Instrument Code", 3, Mandatory),
		c.num("number_of_players", "Number Of Players", 3, Optional),
	)
}()

// COMDescriptor — composite component.
var COMDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("COM",
		c.alpha("component_title", "Component Title", 60, Mandatory),
		c.alpha("component_iswc", "Component ISWC", 11, Optional),
		c.alpha("submitter_work_num", "Submitter Work Number", 14, Optional),
		c.time("duration", "Duration", Optional),
		c.alpha("writer_one_last_name", "Writer 1 Last Name", 45, Mandatory),
		c.alpha("writer_one_first_name", "Writer 1 First Name", 30, Optional),
		c.alpha("writer_one_ipi_name_num", "Writer 1 IPI Name Number", 11, Optional),
		c.alpha("writer_two_last_name", "Writer 2 Last Name", 45, Optional),
		c.alpha("writer_two_first_name", "Writer 2 First Name", 30, Optional),
		c.alpha("writer_two_ipi_name_num", "Writer 2 IPI Name Number", 11, Optional),
	)
}()

// NCTDescriptor — non-roman alphabet component title.
var NCTDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("NCT",
		c.alpha("title", "Title", 640, Mandatory),
		c.code("language_code", "Language Code", Optional, lookup.LanguageCodeCodec),
	)
}()

// NOWDescriptor — non-roman alphabet writer name of a composite component.
var NOWDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("NOW",
		c.alpha("writer_name", "Writer Name", 160, Mandatory),
		c.alpha("writer_first_name", "Writer First Name", 160, Optional),
		c.code("language_code", "Language Code", Optional, lookup.LanguageCodeCodec),
		c.num("writer_position", "Writer Position", 1, Optional),
	)
}()

// MSGDescriptor — diagnostic message attached to an ACK transaction.
var MSGDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("MSG",
		c.code("message_type", "Message Type", Mandatory, lookup.MessageTypeCodec),
		c.num("original_record_sequence_num", "Original Record Sequence Number", 8, Mandatory),
		c.alpha("message_record_type", "Message Record Type", 3, Mandatory),
		c.code("message_level", "Message Level", Mandatory, lookup.MessageLevelCodec),
		c.alpha("validation_number", "Validation Number", 3, Mandatory),
		c.alpha("message_text", "Message Text", 150, Mandatory),
	)
}()

// ARIDescriptor — additional related information.
var ARIDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("ARI",
		c.code("society_num", "Society Number", Mandatory, lookup.SocietyCodec{}),
		c.alpha("work_num", "Work Number", 14, Optional),
		c.code("type_of_right", "Type Of Right", Mandatory, lookup.TypeOfRightCodec),
		c.alpha("subject_code", "Subject Code", 2, Optional),
		c.alpha("note", "Note", 160, Optional),
	)
}()

// XRFDescriptor — cross-reference to a work identifier assigned by another
// organization.
var XRFDescriptor = func() *Descriptor {
	c := newCursor(prefixEnd)
	return newDetailDescriptor("XRF",
		c.code("organization_code", "Organization Code", Mandatory, lookup.OrganizationCodeCodec),
		c.alpha("identifier", "Identifier", 14, Mandatory),
		c.code("identifier_type", "Identifier Type", Mandatory, lookup.IdentifierTypeCodec),
		c.code("validity", "Validity", Mandatory, lookup.ValidityIndicatorCodec),
	)
}()
