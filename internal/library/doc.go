// Package library scans a folder for PDF documents and searches them by title.
package library
