//go:build !windows && !darwin && !aix

package libpath

const searchVar = "LD_LIBRARY_PATH"
