package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// ErrNilDepsFatalLogMsg is used if app or one of the handler dependencies is nil.
	ErrNilDepsFatalLogMsg = "app or handler dependencies are nil"

	// MIMEApplicationXML is the content type of sitemap.xml.
	MIMEApplicationXML = "application/xml"
)
