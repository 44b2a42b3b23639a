// Package output writes generated calendar files to disk.
package output
