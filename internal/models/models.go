package models

import "html/template"

type IndexPageData struct {
	Title   string
	Version string
	Contact template.HTML
}

type ErrorPageData struct {
	Status     int
	StatusText string
	Message    string
}
