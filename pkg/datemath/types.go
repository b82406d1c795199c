package datemath

// DateFormat is the canonical calendar-date layout used across the store.
const DateFormat = "2006-01-02"
