package srs

// Intervals defines the expanding review schedule in days,
// indexed by level-1 for levels 1..5.
var Intervals = []int{1, 3, 7, 14, 30}

// MaxLevel is the highest SRS level a card can reach.
const MaxLevel = 5

// DayMillis is one day in epoch milliseconds.
const DayMillis int64 = 86_400_000
