package datetime

import "errors"

// ErrUnknownLocale indicates that no bundle is registered for the locale or
// any of its parents.
var ErrUnknownLocale = errors.New("datetime: unknown locale")

// ErrUnsupportedLocale indicates that the locale's numbering system is not the
// plain Latin digit system, which the token grammar requires.
var ErrUnsupportedLocale = errors.New("datetime: only latin numbering system is supported")

// ErrUnsupportedToken indicates a token the matching-pattern compiler has no
// pattern for.
var ErrUnsupportedToken = errors.New("datetime: unsupported format token")

// ErrNonExpandableToken indicates a meta token with no context-free skeleton.
var ErrNonExpandableToken = errors.New("datetime: format token cannot be expanded")

// ErrMissingMeridiem indicates a 12-hour value without an AM/PM marker.
var ErrMissingMeridiem = errors.New("datetime: format is missing AM/PM")

// ErrUnsupportedSkeletonPart indicates a locale pattern part (era, time zone
// name) the token grammar has no representation for.
var ErrUnsupportedSkeletonPart = errors.New("datetime: unsupported skeleton part")
