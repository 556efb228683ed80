//go:build aix

package libpath

// AIX resolves shared objects through LIBPATH.
const searchVar = "LIBPATH"
