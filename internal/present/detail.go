package present

import "github.com/paperwatch/paperwatch/internal/models"

// Field is a labelled value inside a detail block.
type Field struct {
	Label string
	Value string
}

// Block is a titled section of the detail view. Text blocks (reason, error)
// carry raw text; the others carry fields.
type Block struct {
	Title  string
	Text   string
	Fields []Field
}

// Detail is the fixed-shape detail view of one entry.
type Detail struct {
	Tone   Tone
	Banner string
	Blocks []Block
}

// Banner texts.
const (
	BannerSuccess = "File renamed successfully"
	BannerSkipped = "File skipped"
	BannerError   = "Error processing file"
)

// Block titles.
const (
	TitleFileInfo = "File Information"
	TitleMetadata = "Extracted Metadata"
	TitleReason   = "Reason"
	TitleError    = "Error Details"
)

// BuildDetail lays out e according to its status. Fields the status calls
// for but the entry lacks come out empty rather than failing; unrecognised
// statuses use the error layout.
func BuildDetail(e models.LogEntry) Detail {
	switch e.Status {
	case models.StatusSuccess:
		return Detail{
			Tone:   ToneSuccess,
			Banner: BannerSuccess,
			Blocks: []Block{
				{
					Title: TitleFileInfo,
					Fields: []Field{
						{"Original Filename", FileName(e.OriginalPath)},
						{"New Filename", FileName(e.NewPath)},
						{"Path", Directory(e.OriginalPath)},
						{"Processing Time", ProcessingTime(e.ProcessingTime)},
					},
				},
				metadataBlock(e.Metadata),
			},
		}

	case models.StatusSkipped:
		return Detail{
			Tone:   ToneWarning,
			Banner: BannerSkipped,
			Blocks: []Block{
				{Title: TitleReason, Text: e.Reason},
				fileInfoBlock(e),
				metadataBlock(e.Metadata),
			},
		}

	default:
		return Detail{
			Tone:   ToneDanger,
			Banner: BannerError,
			Blocks: []Block{
				{Title: TitleError, Text: e.Error},
				fileInfoBlock(e),
			},
		}
	}
}

func fileInfoBlock(e models.LogEntry) Block {
	return Block{
		Title: TitleFileInfo,
		Fields: []Field{
			{"Filename", FileName(e.OriginalPath)},
			{"Path", Directory(e.OriginalPath)},
			{"Processing Time", ProcessingTime(e.ProcessingTime)},
		},
	}
}

func metadataBlock(md *models.Metadata) Block {
	var m models.Metadata
	if md != nil {
		m = *md
	}
	return Block{
		Title: TitleMetadata,
		Fields: []Field{
			{"Author", MetadataValue(m.Author)},
			{"Title", MetadataValue(m.Title)},
			{"Journal", MetadataValue(m.Journal)},
			{"Year", MetadataValue(m.Year)},
		},
	}
}

// Lookup returns the value of the first field named label in the block
// titled title.
func (d Detail) Lookup(title, label string) (string, bool) {
	for _, b := range d.Blocks {
		if b.Title != title {
			continue
		}
		for _, f := range b.Fields {
			if f.Label == label {
				return f.Value, true
			}
		}
	}
	return "", false
}

// Block returns the block titled title.
func (d Detail) Block(title string) (Block, bool) {
	for _, b := range d.Blocks {
		if b.Title == title {
			return b, true
		}
	}
	return Block{}, false
}
