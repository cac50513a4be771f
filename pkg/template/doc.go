// Package template loads the per-category text templates that drive report
// sections: a section title plus headers and optional titles for the three
// tables each category renders. Configuration is YAML, validated eagerly at
// load time, and immutable once stored.
package template
