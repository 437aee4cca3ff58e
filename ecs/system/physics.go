package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
)

const defaultGravity = 1000.0

type PhysicsSystem struct {
	space         *cp.Space
	gravity       float64
	handlersReady bool

	entities     map[ecs.Entity]*bodyInfo
	shapeOwners  map[*cp.Shape]ecs.Entity
	playerShapes map[*cp.Shape]ecs.Entity
	playerStates map[ecs.Entity]*playerContactState
}

type bodyInfo struct {
	body       *cp.Body
	shape      *cp.Shape
	static     bool
	kinematic  bool
	gravityOff bool
}

type playerContactState struct {
	grounded bool
	ground   ecs.Entity
	touched  []ecs.Entity
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	if gravity == 0 {
		gravity = defaultGravity
	}
	ps := &PhysicsSystem{gravity: gravity}
	ps.reset()
	return ps
}

func (ps *PhysicsSystem) reset() {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: ps.gravity})
	ps.space = space
	ps.handlersReady = false
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.shapeOwners = make(map[*cp.Shape]ecs.Entity)
	ps.playerShapes = make(map[*cp.Shape]ecs.Entity)
	ps.playerStates = make(map[ecs.Entity]*playerContactState)
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	dt := clockDt(w)
	if dt <= 0 {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.pushBodies(w, dt)
	ps.resetPlayerContacts(w)

	ps.space.Step(dt)

	ps.syncTransforms(w)
	ps.flushPlayerContacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeSolid)
	handler.UserData = ps
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		playerEntity, playerIsA := sys.playerShapes[shapeA]
		other := shapeB
		if !playerIsA {
			var okB bool
			playerEntity, okB = sys.playerShapes[shapeB]
			if !okB {
				return true
			}
			other = shapeA
		}
		owner, ok := sys.shapeOwners[other]
		if !ok {
			return true
		}

		st := sys.playerStates[playerEntity]
		if st == nil {
			st = &playerContactState{}
			sys.playerStates[playerEntity] = st
		}
		st.touched = append(st.touched, owner)

		n := arb.Normal()
		if !playerIsA {
			n = n.Neg()
		}
		// Only the player's bottom face resting on a top face counts as
		// support; the normal points from the player into the surface.
		if n.Y <= 0.5 {
			return true
		}
		st.grounded = true
		st.ground = owner
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		if info := ps.entities[e]; info != nil {
			info.gravityOff = bodyComp.GravityDisabled
			continue
		}

		cx, cy, _ := entityCenter(w, e)
		isPlayer := ecs.Has(w, e, component.PlayerTagComponent.Kind())
		info := ps.createBodyInfo(cx, cy, bodyComp, isPlayer)
		if info == nil {
			continue
		}
		ps.entities[e] = info
		ps.shapeOwners[info.shape] = e
		if isPlayer {
			ps.playerShapes[info.shape] = e
		}
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	}
}

func (ps *PhysicsSystem) createBodyInfo(cx, cy float64, bodyComp *component.PhysicsBody, isPlayer bool) *bodyInfo {
	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 || height <= 0 {
		return nil
	}
	info := &bodyInfo{static: bodyComp.Static, kinematic: bodyComp.Kinematic, gravityOff: bodyComp.GravityDisabled}

	if bodyComp.Static {
		bb := cp.BB{L: cx - width/2, B: cy - height/2, R: cx + width/2, T: cy + height/2}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		info.body = ps.space.StaticBody
		info.shape = shape
		return info
	}

	var body *cp.Body
	if bodyComp.Kinematic {
		body = cp.NewKinematicBody()
	} else {
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := cp.MomentForBox(mass, width, height)
		if isPlayer {
			// the player never tips over
			moment = math.Inf(1)
		}
		body = cp.NewBody(mass, moment)
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			if info.gravityOff {
				gravity = cp.Vector{}
			}
			cp.BodyUpdateVelocity(body, gravity, damping, dt)
		})
	}
	body.SetPosition(cp.Vector{X: cx, Y: cy})
	body.SetAngle(0)
	body.SetAngularVelocity(0)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeSolid)
	if isPlayer {
		shape.SetCollisionType(collisionTypePlayer)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	info.body = body
	info.shape = shape
	return info
}

// pushBodies hands the engine-owned state to Chipmunk before the step.
// Kinematic bodies are placed one step behind their target with the
// platform's velocity, so the solver ends on the engine's position. Dynamic
// bodies take their transform and velocity as written by the controller and
// respawn logic, plus the velocity of the platform they ride.
func (ps *PhysicsSystem) pushBodies(w *ecs.World, dt float64) {
	for e, info := range ps.entities {
		if info.static || info.body == nil {
			continue
		}
		cx, cy, ok := entityCenter(w, e)
		if !ok {
			continue
		}
		var vx, vy float64
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vx, vy = v.X, v.Y
		}
		if info.kinematic {
			info.body.SetPosition(cp.Vector{X: cx - vx*dt, Y: cy - vy*dt})
		} else {
			info.body.SetPosition(cp.Vector{X: cx, Y: cy})
			vx, vy = carriedVelocity(w, e, vx, vy)
		}
		info.body.SetVelocityVector(cp.Vector{X: vx, Y: vy})
	}
}

// carriedVelocity adds the horizontal velocity of the platform a rider
// stands on and keeps the rider falling at least as fast as a descending
// platform. The player collider has no friction, so nothing else moves it.
func carriedVelocity(w *ecs.World, e ecs.Entity, vx, vy float64) (float64, float64) {
	run, ok := ecs.Get(w, e, component.PlayerRunComponent.Kind())
	if !ok || run.Support.Kind != component.OnMovingPlatform {
		return vx, vy
	}
	pv, ok := ecs.Get(w, ecs.Entity(run.Support.Entity), component.VelocityComponent.Kind())
	if !ok {
		return vx, vy
	}
	return vx + pv.X, math.Max(vy, pv.Y)
}

func (ps *PhysicsSystem) resetPlayerContacts(w *ecs.World) {
	players := w.Query(component.PlayerContactComponent.Kind())
	seen := make(map[ecs.Entity]struct{}, len(players))
	for _, e := range players {
		seen[e] = struct{}{}
		st := ps.playerStates[e]
		if st == nil {
			st = &playerContactState{}
			ps.playerStates[e] = st
		}
		st.grounded = false
		st.ground = 0
		st.touched = st.touched[:0]
	}
	for e := range ps.playerStates {
		if _, ok := seen[e]; !ok {
			delete(ps.playerStates, e)
		}
	}
}

func (ps *PhysicsSystem) flushPlayerContacts(w *ecs.World) {
	for e, st := range ps.playerStates {
		if !w.IsAlive(e) {
			continue
		}
		pc, ok := ecs.Get(w, e, component.PlayerContactComponent.Kind())
		if !ok {
			continue
		}
		pc.Grounded = st.grounded
		pc.Platform = 0
		pc.OnMoving = false
		pc.Hot = 0
		carrier := st.ground
		if st.grounded {
			pc.Platform = uint64(st.ground)
			pc.OnMoving = ecs.Has(w, st.ground, component.MovingPlatformComponent.Kind())
			// a platform riding a mover counts as the mover itself
			if link, ok := ecs.Get(w, st.ground, component.AttachedToComponent.Kind()); ok && w.IsAlive(ecs.Entity(link.Parent)) {
				carrier = ecs.Entity(link.Parent)
				pc.OnMoving = true
			}
		}
		for _, other := range st.touched {
			if p, ok := ecs.Get(w, other, component.PlatformComponent.Kind()); ok && p.Hot {
				pc.Hot = uint64(other)
				break
			}
		}

		run, ok := ecs.Get(w, e, component.PlayerRunComponent.Kind())
		if !ok || run.Support.Kind == component.OnLadder {
			continue
		}
		switch {
		case pc.OnMoving:
			run.Support = component.Support{Kind: component.OnMovingPlatform, Entity: uint64(carrier)}
		case pc.Grounded:
			run.Support = component.Support{Kind: component.Grounded}
		default:
			run.Support = component.Support{Kind: component.Airborne}
		}
	}
}

// syncTransforms copies dynamic bodies back into their transforms. Static
// and kinematic bodies are owned by the level and the motion engine.
func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static || info.kinematic || info.body == nil {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		x, y := pos.X, pos.Y
		if s, ok := ecs.Get(w, e, component.ShapeComponent.Kind()); ok {
			ox, oy := s.OriginOffset()
			x, y = x-s.Width/2+ox, y-s.Height/2+oy
		}
		t.X, t.Y = x, y
		vel := info.body.Velocity()
		setVelocity(w, e, vel.X, vel.Y)
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.shapeOwners, info.shape)
			delete(ps.playerShapes, info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
		delete(ps.playerStates, e)
	}
}
