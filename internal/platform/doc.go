// Package platform holds the per-OS knowledge the bootstrapper needs: where
// the companion browser is installed on each platform family and how file
// permissions are applied. Unknown platforms use the default entry.
package platform
