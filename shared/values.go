package shared

// Epsilon Tolerance below which the x-distance between two points is treated
// as zero, classifying the line through them as vertical.
const Epsilon = 1e-6
