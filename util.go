package planetgear

// tolerance is the distance below which two vertices are considered equal.
const tolerance = 1e-9
