package core

// Entity is a unique identifier for a simulated object
// Zero is never allocated and marks "no entity"
type Entity uint64

// NoEntity is the zero entity, used for unparented visuals
const NoEntity Entity = 0
