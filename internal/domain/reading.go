package domain

// Reading is an air-quality index sample.
type Reading int

// SentinelReading terminates an interactive reading session.
const SentinelReading Reading = -1
