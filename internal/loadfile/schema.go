package loadfile

// CanonicalColumns is the known field list for this document-production
// format, in order. It is a fallback naming source only: the file's own
// header always wins for counting, and observed widths of 27, 29, or 31
// columns are reconciled against the header, never against this list.
var CanonicalColumns = []string{
	"Bates Begin",
	"Bates End",
	"Bates Begin Attach",
	"Bates End Attach",
	"Attachment Document",
	"Pages",
	"Author",
	"Custodian/Source",
	"Date Created",
	"Date Last Modified",
	"Date Received",
	"Date Sent",
	"Time Sent",
	"Document Extension",
	"Email BCC",
	"Email CC",
	"Email From",
	"Email Subject/Title",
	"Email To",
	"Original Filename",
	"File Size",
	"Original Folder Path",
	"MD5 Hash",
	"Parent Document ID",
	"Document Title",
	"Time Zone",
	"Text Link",
	"Native Link",
}
