package component

// Attachment links a child entity to a moving platform. RelX/RelY is the
// child's top-left relative to the parent's top-left, fixed at attach time.
// OriginX/OriginY converts the child's top-left into its transform origin.
type Attachment struct {
	Child   uint64
	RelX    float64
	RelY    float64
	OriginX float64
	OriginY float64
}

// Attachments is held by a moving platform carrying other entities.
type Attachments struct {
	Children []Attachment
}

var AttachmentsComponent = NewComponent[Attachments]()

// AttachedTo is held by a child so other systems can find its parent.
type AttachedTo struct {
	Parent uint64
}

var AttachedToComponent = NewComponent[AttachedTo]()
