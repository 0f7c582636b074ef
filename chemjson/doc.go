//Package chemjson implements the serialization and unserialization of
//gofluct data types. Trajectories are read from JSON documents, analyses
//can be saved and loaded back, so a trajectory doesn't need to be analyzed again
//to be colored with other settings, and the colors of an outline can be written
//for other programs (such as a renderer) to use.
//Create and Open compress and decompress the files transparently, depending on
//their extension.
package chemjson
