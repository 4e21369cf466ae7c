// Package config centralizes file locations and runtime configuration for
// the KPI pipeline. Paths are resolved relative to the executable directory
// so the tools behave identically wherever they are launched from; an
// optional finkpi.yaml next to the executable and FINKPI_* environment
// variables can redirect the data and output directories and tune chart
// dimensions.
package config
