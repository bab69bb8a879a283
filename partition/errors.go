// SPDX-License-Identifier: MIT
// Package: graphgen/partition
//
// errors.go - sentinel errors for the partition package.
//
// Error policy:
//   • Every input-validation sentinel wraps ErrInvalidArgument, so callers can
//     branch on the broad class or on the exact precondition.
//   • ErrNoPartitions is NOT an invalid argument: it reports a defect in the
//     enumeration/filter logic and is not expected to be user-recoverable.
//   • Context (the offending values) is attached with %w at the failure site.

package partition

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the class of every input-validation failure.
var ErrInvalidArgument = errors.New("partition: invalid argument")

var (
	// ErrNumItems indicates num_items < 1.
	ErrNumItems = fmt.Errorf("%w: number of items must be at least 1", ErrInvalidArgument)

	// ErrNumParts indicates num_partitions < 1.
	ErrNumParts = fmt.Errorf("%w: number of parts must be at least 1", ErrInvalidArgument)

	// ErrMinSize indicates min_partition_size < 1.
	ErrMinSize = fmt.Errorf("%w: minimum part size must be at least 1", ErrInvalidArgument)

	// ErrTooFewItems indicates num_items < num_partitions*min_partition_size.
	ErrTooFewItems = fmt.Errorf("%w: too few items to be partitioned", ErrInvalidArgument)

	// ErrMaxBelowMin indicates a supplied max_partition_size below min_partition_size.
	ErrMaxBelowMin = fmt.Errorf("%w: maximum part size is below the minimum part size", ErrInvalidArgument)

	// ErrMaxTooSmall indicates max_partition_size < ceil(num_items/num_partitions):
	// not even the most even split fits under the cap.
	ErrMaxTooSmall = fmt.Errorf("%w: maximum part size is too small", ErrInvalidArgument)
)

// ErrNoPartitions indicates that validated parameters produced an empty result.
var ErrNoPartitions = errors.New("partition: no partitions satisfy validated parameters")
