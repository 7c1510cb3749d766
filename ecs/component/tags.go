package component

type CharacterTag struct{}

var CharacterTagComponent = NewComponent[CharacterTag]("character")

type TargetTag struct{}

var TargetTagComponent = NewComponent[TargetTag]("target")

// Name labels an entity in logs and the combat log.
type Name string

var NameComponent = NewComponent[Name]("name")
