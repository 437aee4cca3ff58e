package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// StartMarker is the authored start-position region. It has no behavior.
type StartMarker struct{}

var StartMarkerComponent = NewComponent[StartMarker]()
