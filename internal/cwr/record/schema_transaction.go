package record

import (
	"github.com/leengari/cwrkit/internal/cwr/cwrversion"
	"github.com/leengari/cwrkit/internal/cwr/lookup"
)

// Transaction-header records: AGR, NWR, REV, ISW, EXC, ACK (spec.md §6).
// Every one of these shares the 19-byte common prefix (record_type,
// transaction_sequence_num, record_sequence_num) built by
// transactionPrefix() / newDetailDescriptor.

// AGRDescriptor describes an agreement transaction header. Column 49..57
// is agreement_start_date — matching spec.md §8 scenario 3 exactly. The
// v2.0 line ends at column 107, matching scenario 2; v2.1 adds
// society_assigned_agreement_number at column 107, matching scenario 6's
// submitter_agreement_number width of 14.
var AGRDescriptor = newDetailDescriptor("AGR",
	alphaF("submitter_agreement_number", "Submitter Agreement Number", 19, 14, Mandatory),
	alphaF("international_standard_agreement_code", "International Standard Agreement Code", 33, 14, Optional),
	codeF("agreement_type", "Agreement Type", 47, Mandatory, lookup.AgreementTypeCodec),
	dateF("agreement_start_date", "Agreement Start Date", 49, Mandatory),
	dateF("agreement_end_date", "Agreement End Date", 57, Optional),
	dateF("retention_end_date", "Retention End Date", 65, Optional),
	codeF("prior_royalty_status", "Prior Royalty Status", 73, Mandatory, lookup.RoyaltyStatusCodec),
	dateF("prior_royalty_start_date", "Prior Royalty Start Date", 74, Optional),
	codeF("post_term_collection_status", "Post-Term Collection Status", 82, Mandatory, lookup.RoyaltyStatusCodec),
	dateF("post_term_collection_end_date", "Post-Term Collection End Date", 83, Optional),
	dateF("date_of_signature_of_agreement", "Date Of Signature Of Agreement", 91, Optional),
	codeF("number_of_works", "Number Of Works", 99, Mandatory, lookup.WorksCountCodec{}),
	flagF("sales_manufacture_clause", "Sales/Manufacture Clause", 104, Optional),
	boolF("shares_change", "Shares Change", 105, Optional),
	boolF("advance_given", "Advance Given", 106, Optional),
	versioned(alphaF("society_assigned_agreement_number", "Society-Assigned Agreement Number", 107, 14, Optional), cwrversion.V21),
)

// nwrFields is shared verbatim by NWR (New Work Registration) and REV
// (Revised Work Registration), which carry identical field lists per the
// CWR spec. A v2.0 line ends at column 196; v2.1 extends to 209; v2.2 to
// 260 (matching spec.md §8 scenario 5's "length-260 line").
func nwrFields() []FieldDescriptor {
	return []FieldDescriptor{
		alphaF("work_title", "Work Title", 19, 60, Mandatory),
		codeF("language_code", "Language Code", 79, Optional, lookup.LanguageCodeCodec),
		alphaF("submitter_work_number", "Submitter Work Number", 81, 14, Mandatory),
		alphaF("iswc", "ISWC", 95, 11, Optional),
		dateF("copyright_date", "Copyright Date", 106, Optional),
		alphaF("copyright_number", "Copyright Number", 114, 12, Optional),
		codeF("musical_work_distribution_category", "Musical Work Distribution Category", 126, Mandatory, lookup.DistributionCategoryCodec),
		timeF("duration", "Duration", 129, Optional),
		flagF("recorded_indicator", "Recorded Indicator", 135, Mandatory),
		codeF("text_music_relationship", "Text Music Relationship", 136, Optional, lookup.TextMusicRelationshipCodec),
		alphaF("composite_type", "Composite Type", 139, 3, Optional),
		codeF("version_type", "Version Type", 142, Mandatory, lookup.VersionTypeCodec),
		alphaF("excerpt_type", "Excerpt Type", 145, 3, Optional),
		codeF("music_arrangement", "Music Arrangement", 148, Optional, lookup.MusicArrangementCodec),
		codeF("lyric_adaptation", "Lyric Adaptation", 151, Optional, lookup.LyricAdaptationCodec),
		alphaF("contact_name", "Contact Name", 154, 30, Optional),
		alphaF("contact_id", "Contact ID", 184, 10, Optional),
		alphaF("cwr_work_type", "CWR Work Type", 194, 2, Optional),
		versioned(boolF("grand_rights_indicator", "Grand Rights Indicator", 196, Optional), cwrversion.V21),
		versioned(numF("composite_component_count", "Composite Component Count", 197, 3, Optional), cwrversion.V21),
		versioned(dateF("printed_edition_publication_date", "Printed Edition Publication Date", 200, Optional), cwrversion.V21),
		versioned(flagF("exceptional_clause", "Exceptional Clause", 208, Optional), cwrversion.V21),
		versioned(alphaF("opus_number", "Opus Number", 209, 25, Optional), cwrversion.V22),
		versioned(alphaF("catalogue_number", "Catalogue Number", 234, 25, Optional), cwrversion.V22),
		versioned(flagF("priority_flag", "Priority Flag", 259, Optional), cwrversion.V22),
	}
}

// NWRDescriptor describes a New Work Registration.
var NWRDescriptor = newDetailDescriptor("NWR", nwrFields()...)

// REVDescriptor describes a Revised Work Registration — same layout as NWR.
var REVDescriptor = newDetailDescriptor("REV", nwrFields()...)

// ISWDescriptor describes an ISWC-notification transaction header.
var ISWDescriptor = newDetailDescriptor("ISW",
	alphaF("submitter_work_number", "Submitter Work Number", 19, 14, Mandatory),
	alphaF("iswc", "ISWC", 33, 11, Mandatory),
	alphaF("work_title", "Work Title", 44, 60, Optional),
	versioned(dateF("effective_date", "Effective Date", 104, Optional), cwrversion.V21),
)

// EXCDescriptor describes an existing-work-in-conflict transaction header.
var EXCDescriptor = newDetailDescriptor("EXC",
	alphaF("submitter_work_number", "Submitter Work Number", 19, 14, Mandatory),
	alphaF("existing_work_title", "Existing Work Title", 33, 60, Mandatory),
	alphaF("iswc", "ISWC", 93, 11, Optional),
	alphaF("writer_last_name", "Writer Last Name", 104, 45, Optional),
	alphaF("writer_first_name", "Writer First Name", 149, 30, Optional),
	alphaF("source", "Source", 179, 60, Optional),
)

// ACKDescriptor describes an acknowledgement transaction header.
var ACKDescriptor = newDetailDescriptor("ACK",
	dateF("creation_date", "Creation Date", 19, Mandatory),
	timeF("creation_time", "Creation Time", 27, Mandatory),
	numF("original_group_id", "Original Group ID", 33, 5, Mandatory),
	numF("original_transaction_sequence_num", "Original Transaction Sequence Number", 38, 8, Mandatory),
	alphaF("original_transaction_type", "Original Transaction Type", 46, 3, Mandatory),
	alphaF("creation_title", "Creation Title", 49, 60, Optional),
	alphaF("submitter_creation_num", "Submitter Creation Number", 109, 20, Optional),
	alphaF("recipient_creation_num", "Recipient Creation Number", 129, 20, Optional),
	dateF("processing_date", "Processing Date", 149, Mandatory),
	codeF("transaction_status", "Transaction Status", 157, Mandatory, lookup.TransactionStatusCodec),
)
