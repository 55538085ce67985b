package messages

// System messages for downloads and child processes.
const (
	FetchSessionFailedFmt  = "create request for %s: %w"
	FetchOpenURLFailedFmt  = "open %s: %w"
	FetchStatusFailedFmt   = "download %s: unexpected status %s"
	FetchOpenFileFailedFmt = "open %s for writing: %w"
	FetchWriteFailedFmt    = "write %s to %s: %w"

	// FetchDownloading is logged before a download starts.
	FetchDownloading = "downloading"
	FetchDownloaded  = "downloaded"
	// FetchNonSuccessStatus is logged when a non-2xx body is saved because status checks are off.
	FetchNonSuccessStatus = "saved response with non-success status"

	RunnerSpawnFailedFmt = "start %q: %w"
	RunnerExitFailedFmt  = "%q exited with status %d"
	RunnerWaitFailedFmt  = "wait for %q: %w"
	RunnerEmptyCommand   = "empty command line"
	RunnerTruncated      = "command line exceeds the maximum length and was truncated"
	RunnerStarting       = "starting process"
	RunnerExited         = "process exited"
)
