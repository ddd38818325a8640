package bridge

// helpersJS is the shared prelude prepended to every generated script. It
// defines the serializers, lookup functions, and status conversions used by
// the per-operation bodies. The script runs inside OmniFocus's automation
// context, where flattenedTasks, flattenedProjects, flattenedTags,
// flattenedFolders, folders, inbox, and the entity constructors are globals.
const helpersJS = `
function isoOrNull(d) {
  return d ? d.toISOString() : null;
}

function serializeTask(task) {
  const containingProject = task.containingProject;
  return {
    id: task.id.primaryKey,
    name: task.name,
    note: task.note || null,
    completed: task.completed,
    dropped: task.dropped,
    effectivelyActive: !task.completed && !task.dropped,
    flagged: task.flagged,
    project: containingProject ? containingProject.name : null,
    tags: task.tags.map(t => t.name),
    defer: isoOrNull(task.deferDate),
    due: isoOrNull(task.dueDate),
    estimatedMinutes: task.estimatedMinutes || null,
    completionDate: isoOrNull(task.completionDate),
    added: isoOrNull(task.added),
    modified: isoOrNull(task.modified)
  };
}

function serializeProject(project) {
  const folder = project.folder;
  const allTasks = project.flattenedTasks;
  const remainingTasks = allTasks.filter(t => !t.completed);
  return {
    id: project.id.primaryKey,
    name: project.name,
    note: project.note || null,
    status: projectStatusToString(project.status),
    effectivelyActive: project.status === Project.Status.Active && (!folder || folder.effectiveActive),
    folder: folder ? folder.name : null,
    sequential: project.sequential,
    taskCount: allTasks.length,
    remainingCount: remainingTasks.length,
    tags: project.tags.map(t => t.name)
  };
}

function maxDate(current, d) {
  if (!d) return current;
  if (!current || d.getTime() > current.getTime()) return d;
  return current;
}

function serializeTag(tag, activeOnly) {
  const counted = activeOnly ? tag.remainingTasks : tag.tasks;
  let last = maxDate(null, tag.added);
  last = maxDate(last, tag.modified);
  for (const task of counted) {
    last = maxDate(last, task.added);
    last = maxDate(last, task.modified);
    last = maxDate(last, task.completionDate);
  }
  return {
    id: tag.id.primaryKey,
    name: tag.name,
    taskCount: counted.length,
    remainingTaskCount: tag.remainingTasks.length,
    added: isoOrNull(tag.added),
    modified: isoOrNull(tag.modified),
    lastActivity: last ? last.toISOString() : null,
    active: tag.active,
    status: tagStatusToString(tag.status),
    parent: tag.parent ? tag.parent.name : null,
    children: tag.children.map(c => c.name),
    allowsNextAction: tag.allowsNextAction
  };
}

function serializeFolder(folder, includeDropped) {
  const projects = folder.projects;
  const remainingProjects = projects.filter(p =>
    p.status !== Project.Status.Dropped && p.status !== Project.Status.Done);
  const children = [];
  for (const child of folder.folders) {
    if (!includeDropped && !child.effectiveActive) continue;
    children.push(serializeFolder(child, includeDropped));
  }
  return {
    id: folder.id.primaryKey,
    name: folder.name,
    status: folderStatusToString(folder.status),
    effectivelyActive: folder.effectiveActive,
    parent: folder.parent ? folder.parent.name : null,
    projectCount: projects.length,
    remainingProjectCount: remainingProjects.length,
    folderCount: folder.folders.length,
    children: children
  };
}

function findTask(idOrName) {
  for (const task of flattenedTasks) {
    if (task.id.primaryKey === idOrName || task.name === idOrName) {
      return task;
    }
  }
  throw new Error("Task not found: " + idOrName);
}

function findProject(idOrName) {
  for (const project of flattenedProjects) {
    if (project.id.primaryKey === idOrName || project.name === idOrName) {
      return project;
    }
  }
  throw new Error("Project not found: " + idOrName);
}

function findFolder(idOrName) {
  for (const folder of flattenedFolders) {
    if (folder.id.primaryKey === idOrName || folder.name === idOrName) {
      return folder;
    }
  }
  throw new Error("Folder not found: " + idOrName);
}

function findByName(collection, name, typeName) {
  for (const item of collection) {
    if (item.name === name) {
      return item;
    }
  }
  throw new Error(typeName + " not found: " + name);
}

function tagPath(tag) {
  const parts = [tag.name];
  let parent = tag.parent;
  while (parent) {
    parts.unshift(parent.name);
    parent = parent.parent;
  }
  return parts.join("/");
}

function findTagByIdOrPath(idOrPath) {
  for (const tag of flattenedTags) {
    if (tag.id.primaryKey === idOrPath) return tag;
  }
  if (idOrPath.indexOf("/") >= 0) {
    for (const tag of flattenedTags) {
      if (tagPath(tag) === idOrPath) return tag;
    }
    throw new Error("Tag not found: " + idOrPath);
  }
  const matches = flattenedTags.filter(t => t.name === idOrPath);
  if (matches.length === 0) {
    throw new Error("Tag not found: " + idOrPath);
  }
  if (matches.length > 1) {
    const candidates = matches.map(t => tagPath(t) + " (" + t.id.primaryKey + ")").join(", ");
    throw new Error("Multiple tags named \"" + idOrPath + "\": " + candidates +
      ". Use a full path or id to disambiguate.");
  }
  return matches[0];
}

function assignTags(target, tagNames) {
  for (const tagName of tagNames) {
    const tag = findByName(flattenedTags, tagName, "Tag");
    target.addTag(tag);
  }
}

function replaceTagsOn(target, tagNames) {
  target.clearTags();
  assignTags(target, tagNames);
}

function projectStatusToString(status) {
  if (status === Project.Status.Active) return "active";
  if (status === Project.Status.OnHold) return "on hold";
  return "dropped";
}

function stringToProjectStatus(str) {
  if (str === "active") return Project.Status.Active;
  if (str === "on hold") return Project.Status.OnHold;
  return Project.Status.Dropped;
}

function tagStatusToString(status) {
  if (status === Tag.Status.Active) return "active";
  if (status === Tag.Status.OnHold) return "on hold";
  return "dropped";
}

function stringToTagStatus(str) {
  if (str === "active") return Tag.Status.Active;
  if (str === "on hold") return Tag.Status.OnHold;
  return Tag.Status.Dropped;
}

function folderStatusToString(status) {
  if (status === Folder.Status.Active) return "active";
  return "dropped";
}
`
