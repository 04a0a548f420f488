package components

// EntityRef 组件内引用其他实体
// 与 ecs.EntityID 取值相同，避免 components 包依赖 ecs 包
type EntityRef uint64
