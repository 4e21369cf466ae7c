// Package exporter writes the KPI table in formats meant for spreadsheet
// consumers. The CSV artifact itself is handled by the table package; this
// package adds the Excel workbook rendition.
package exporter
