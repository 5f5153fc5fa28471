package core

// TotalVotes sums all vote counts. The sum wraps past 2^64-1.
func TotalVotes(votes []Votes) Count {
	var total Count
	for _, v := range votes {
		total += Count(v)
	}
	return total
}

// TotalSeats sums the awarded counts of all allocations.
func TotalSeats(seats []Seats) Count {
	var total Count
	for _, s := range seats {
		total += s.awarded
	}
	return total
}

// Counts returns the awarded count of every allocation, in order.
func Counts(seats []Seats) []Count {
	out := make([]Count, len(seats))
	for i, s := range seats {
		out[i] = s.awarded
	}
	return out
}

// UnlimitedSeats returns n empty, unbounded allocations.
func UnlimitedSeats(n int) []Seats {
	out := make([]Seats, n)
	for i := range out {
		out[i] = Unlimited()
	}
	return out
}

// VotesOf converts plain counts into Votes.
func VotesOf(counts ...Count) []Votes {
	out := make([]Votes, len(counts))
	for i, c := range counts {
		out[i] = Votes(c)
	}
	return out
}
