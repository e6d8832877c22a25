// Package slackspace measures the space lost to cluster allocation granularity.
//
// It queries the cluster size of the volume holding the scan root, walks the
// directory tree with one of the engines from package walk, and accumulates
// per-file slack (the unused tail of each file's last cluster) in a Tally.
package slackspace
