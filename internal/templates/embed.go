package templates

import (
	"embed"
)

// The django-app skeleton. "all:" keeps the dot-files (.travis.yml) and the
// underscore-prefixed path placeholder directories in the embedded tree.
//
//go:embed all:django-app
var skeletonFS embed.FS

// SkeletonName is the root directory of the embedded skeleton.
const SkeletonName = "django-app"

// appNamePlaceholder is the path segment substituted with the app name
// during rendering.
const appNamePlaceholder = "__app_name__"
