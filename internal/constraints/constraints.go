// Package constraints provides type constraints shared by the grammar packages.
package constraints

// Byteseq is an input the productions can slice without copying: a string or a byte slice.
type Byteseq interface {
	~string | ~[]byte
}
