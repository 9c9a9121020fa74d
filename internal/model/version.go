package model

// Version is the findbackend release version.
const Version = "0.3.0"
