/*
Package relwatch checks a source-code hosting provider's release API for a
newer release of the host application.

A Checker is given a repository locator (web URL, "owner/repo" pair, or git
remote URL) and the current version, performs one request against the
provider's releases endpoint, and reports whether a newer release exists.
The update policy is pluggable: the default compares only the leading numeric
component of the version strings, and SemverComparator offers full semantic
ordering.

Release sources for GitHub and GitLab live under source/; any type
implementing Source can be supplied instead. An optional presentation layer
can attach an Observer to receive loading/result/error transitions without
forwarding them manually.
*/
package relwatch
